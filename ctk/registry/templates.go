package registry

import (
	"github.com/pmuens/ctk/ctk/ctkerr"
	"github.com/pmuens/ctk/ctk/keys"
)

// KeyTemplate names the type URL and Variant a fresh key should be
// generated with, looked up by the short names spec.md §6 lists
// (XCHACHA20_POLY1305, ED25519_RAW, ...).
type KeyTemplate struct {
	Name    string
	TypeURL string
	Variant keys.Variant
}

var templates = map[string]KeyTemplate{
	"XCHACHA20_POLY1305":     {"XCHACHA20_POLY1305", TypeURLXChaCha20Poly1305, keys.VariantTink},
	"XCHACHA20_POLY1305_RAW": {"XCHACHA20_POLY1305_RAW", TypeURLXChaCha20Poly1305, keys.VariantNoPrefix},
	"CHACHA20_POLY1305":      {"CHACHA20_POLY1305", TypeURLChaCha20Poly1305, keys.VariantTink},
	"CHACHA20_POLY1305_RAW":  {"CHACHA20_POLY1305_RAW", TypeURLChaCha20Poly1305, keys.VariantNoPrefix},
	"ED25519":                {"ED25519", TypeURLEd25519Private, keys.VariantTink},
	"ED25519_RAW":            {"ED25519_RAW", TypeURLEd25519Private, keys.VariantNoPrefix},
}

// LookupTemplate returns the KeyTemplate registered under name, or
// ctkerr.ErrUnknownKeyTemplate on a miss.
func LookupTemplate(name string) (KeyTemplate, error) {
	t, ok := templates[name]
	if !ok {
		return KeyTemplate{}, ctkerr.ErrUnknownKeyTemplate
	}
	return t, nil
}
