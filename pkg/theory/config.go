package theory

// Config is the set of components the assembler will emit.
type Config map[Component]bool

// DefaultConfig enables every required component plus the two optional
// ones that sharpen solutions without growing the formula much:
// PlacementExcludes and OthersCovered. AllPiecesPlaced,
// SelectorAtMostOne and SelectorImplied stay off; they are implied by
// the defaults on any solvable instance.
func DefaultConfig() Config {
	cfg := Config{}
	for _, c := range Components() {
		if c.Required() {
			cfg[c] = true
		}
	}
	cfg.Enable(PlacementExcludes)
	cfg.Enable(OthersCovered)
	return cfg
}

func (cfg Config) Enable(c Component)  { cfg[c] = true }
func (cfg Config) Disable(c Component) { delete(cfg, c) }

// Enabled reports whether the component will be emitted.
func (cfg Config) Enabled(c Component) bool { return cfg[c] }

// Included returns the enabled components in canonical order.
func (cfg Config) Included() []Component {
	var cs []Component
	for _, c := range Components() {
		if cfg.Enabled(c) {
			cs = append(cs, c)
		}
	}
	return cs
}

// Excluded returns the disabled components in canonical order.
func (cfg Config) Excluded() []Component {
	var cs []Component
	for _, c := range Components() {
		if !cfg.Enabled(c) {
			cs = append(cs, c)
		}
	}
	return cs
}
