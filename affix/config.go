package affix

// Config controls limits and optional acceleration paths for building and
// querying a Store. ParseFileWithConfig validates it up front and stores
// it on the resulting Store; Checker.check, Munch, and BulkMunch consult
// it (via the Store) for the bounds and toggles below, and
// ParseFileWithConfig forwards EnablePrefixAcceleration to package
// editdist's common-prefix scan.
//
// Example:
//
//	config := affix.DefaultConfig()
//	config.EnableBulkMunchIndex = false // always use per-word Munch
//	store, err := affix.ParseFileWithConfig(r, "UTF-8", config)
type Config struct {
	// MaxWordLen bounds the length of a word accepted by AffixCheck,
	// Munch, or BulkMunch. Words longer than this are rejected before
	// any rule walk begins.
	// Default: 256
	MaxWordLen int

	// MaxConditions bounds the number of condition slots a single rule
	// may use. Condition.conds is a byte-per-position bitmap keyed by an
	// 8-bit slot index, so this can never exceed 8.
	// Default: 8
	MaxConditions int

	// MaxStripLen bounds the length of a rule's strip string.
	// Default: 64
	MaxStripLen int

	// MaxAffixEntries bounds the total number of prefix plus suffix
	// entries a single Store may hold, guarding against a runaway affix
	// file.
	// Default: 100000
	MaxAffixEntries int

	// EnableBulkMunchIndex controls whether BulkMunch builds and
	// consults the Aho-Corasick pre-filter (internal/bulkmatch). When
	// false, BulkMunch falls back to calling Munch for every word.
	// Default: true
	EnableBulkMunchIndex bool

	// EnablePrefixAcceleration controls whether the SIMD common-prefix
	// helper (internal/simd) is used inside editdist's common-prefix
	// skip. When false, a plain byte-by-byte loop is used instead.
	// Default: true
	EnablePrefixAcceleration bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxWordLen:               256,
		MaxConditions:            8,
		MaxStripLen:              64,
		MaxAffixEntries:          100_000,
		EnableBulkMunchIndex:     true,
		EnablePrefixAcceleration: true,
	}
}

// Validate checks if the configuration is valid, returning a
// *ConfigError naming the first out-of-range field found.
//
// Valid ranges:
//   - MaxWordLen: 1 to 8,192
//   - MaxConditions: 1 to 8 (the condition bitmap's hard per-rule limit)
//   - MaxStripLen: 0 to 1,024
//   - MaxAffixEntries: 1 to 1,000,000
func (c Config) Validate() error {
	if c.MaxWordLen < 1 || c.MaxWordLen > 8192 {
		return &ConfigError{
			Field:   "MaxWordLen",
			Message: "must be between 1 and 8,192",
		}
	}
	if c.MaxConditions < 1 || c.MaxConditions > maxConditions {
		return &ConfigError{
			Field:   "MaxConditions",
			Message: "must be between 1 and 8",
		}
	}
	if c.MaxStripLen < 0 || c.MaxStripLen > 1024 {
		return &ConfigError{
			Field:   "MaxStripLen",
			Message: "must be between 0 and 1,024",
		}
	}
	if c.MaxAffixEntries < 1 || c.MaxAffixEntries > 1_000_000 {
		return &ConfigError{
			Field:   "MaxAffixEntries",
			Message: "must be between 1 and 1,000,000",
		}
	}
	return nil
}
