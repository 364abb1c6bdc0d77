package metrics

import "testing"

// TestDetectEthnicity_RegionalSets verifies one representative country per
// regional set.
func TestDetectEthnicity_RegionalSets(t *testing.T) {
	cases := []struct {
		country string
		want    Ethnicity
	}{
		{"JP", EthnicityAsian},
		{"IN", EthnicityAsian},
		{"DE", EthnicityCaucasian},
		{"AU", EthnicityCaucasian},
		{"NG", EthnicityBlackAfrican},
		{"MX", EthnicityHispanic},
		{"SA", EthnicityMiddleEastern},
		{"FJ", EthnicityPacificIslander},
	}

	for _, tc := range cases {
		t.Run(tc.country, func(t *testing.T) {
			got := DetectEthnicity(tc.country, "")
			if got.Ethnicity != tc.want {
				t.Errorf("DetectEthnicity(%q) = %s, want %s", tc.country, got.Ethnicity, tc.want)
			}
			if got.ShouldAskUser {
				t.Errorf("regional-set match for %q should not ask the user", tc.country)
			}
		})
	}
}

// TestDetectEthnicity_MultiEthnicCountries verifies high-diversity nations
// resolve to mixed at confidence 50 and always ask the user.
func TestDetectEthnicity_MultiEthnicCountries(t *testing.T) {
	for _, country := range []string{"US", "BR", "ZA", "SG"} {
		t.Run(country, func(t *testing.T) {
			got := DetectEthnicity(country, "")
			if got.Ethnicity != EthnicityMixed {
				t.Errorf("ethnicity = %s, want mixed", got.Ethnicity)
			}
			if got.Confidence != 50 {
				t.Errorf("confidence = %d, want 50", got.Confidence)
			}
			if !got.ShouldAskUser {
				t.Error("multi-ethnic country should ask the user")
			}
			if got.Message == "" {
				t.Error("expected a disambiguation message")
			}
		})
	}
}

// TestDetectEthnicity_GeneralFallback verifies unmatched countries fall to
// general at confidence 40 with should-ask-user set.
func TestDetectEthnicity_GeneralFallback(t *testing.T) {
	got := DetectEthnicity("XX", "")
	if got.Ethnicity != EthnicityGeneral {
		t.Errorf("ethnicity = %s, want general", got.Ethnicity)
	}
	if got.Confidence != 40 {
		t.Errorf("confidence = %d, want 40", got.Confidence)
	}
	if !got.ShouldAskUser {
		t.Error("general fallback should ask the user")
	}
}

// TestDetectEthnicity_ConfidenceRange verifies every detection's confidence
// stays within [0,100].
func TestDetectEthnicity_ConfidenceRange(t *testing.T) {
	for _, country := range []string{"JP", "US", "XX", "NG", "FJ", ""} {
		got := DetectEthnicity(country, "")
		if got.Confidence < 0 || got.Confidence > 100 {
			t.Errorf("DetectEthnicity(%q) confidence = %d, out of [0,100]", country, got.Confidence)
		}
	}
}
