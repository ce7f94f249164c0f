package affix

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidateRejectsOutOfRangeMaxConditions(t *testing.T) {
	c := DefaultConfig()
	c.MaxConditions = 9
	err := c.Validate()
	ce, ok := err.(*ConfigError)
	if !ok {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
	if ce.Field != "MaxConditions" {
		t.Fatalf("Field = %q, want MaxConditions", ce.Field)
	}
}

func TestConfigValidateRejectsZeroMaxWordLen(t *testing.T) {
	c := DefaultConfig()
	c.MaxWordLen = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected an error for MaxWordLen = 0")
	}
}

func TestConfigValidateRejectsOutOfRangeMaxAffixEntries(t *testing.T) {
	c := DefaultConfig()
	c.MaxAffixEntries = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected an error for MaxAffixEntries = 0")
	}
}
