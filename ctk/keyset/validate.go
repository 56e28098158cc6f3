package keyset

import (
	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/keys"
)

// ValidateEntry checks the invariants spec.md §4.5 places on a single
// entry: key data must be present, the output prefix type must be known,
// and the status must not be StatusUnknown.
func ValidateEntry(e Entry) error {
	if e.Key == nil {
		return ctkerr.ErrInvalidKeyset
	}
	if e.OutputPrefixType == keys.VariantUnknown {
		return ctkerr.ErrInvalidKeyset
	}
	if e.Status == StatusUnknown {
		return ctkerr.ErrInvalidKeyset
	}
	return nil
}

// Validate checks the invariants spec.md §3/§4.5 place on a Keyset as a
// whole:
//   - every entry individually passes ValidateEntry
//   - at least one entry is StatusEnabled
//   - among StatusEnabled entries, exactly one has KeyID == PrimaryKeyID,
//     unless every StatusEnabled entry is asymmetric public material (a
//     public-only keyset needs no primary, since it can only verify, not
//     sign)
func Validate(ks Keyset) error {
	var enabledCount int
	var primaryCount int
	allPublic := true

	for _, e := range ks.Entries {
		if err := ValidateEntry(e); err != nil {
			return err
		}
		if e.Status != StatusEnabled {
			continue
		}
		enabledCount++
		if e.Key.Material() != keys.MaterialAsymmetricPublic {
			allPublic = false
		}
		if e.KeyID == ks.PrimaryKeyID {
			primaryCount++
		}
	}

	if enabledCount == 0 {
		return ctkerr.ErrInvalidKeyset
	}
	if primaryCount > 1 {
		return ctkerr.ErrInvalidKeyset
	}
	if primaryCount == 0 && !allPublic {
		return ctkerr.ErrInvalidKeyset
	}
	return nil
}
