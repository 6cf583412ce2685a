package routes

import "fmt"

// Variant selects which whole-application route table is served. Variants are
// mutually exclusive: a process mounts exactly one of them.
type Variant string

const (
	// VariantHello greets with the hostname and current time.
	VariantHello Variant = "hello"
	// VariantCPU serves a static greeting and the /cpu burn endpoint.
	VariantCPU Variant = "cpu"
)

// Variants lists the known variants in display order.
var Variants = []Variant{VariantHello, VariantCPU}

func (v Variant) String() string { return string(v) }

// ParseVariant accepts an exact variant name, the same set config
// validation allows.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	for _, known := range Variants {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q (want one of %v)", s, Variants)
}
