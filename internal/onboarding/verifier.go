package onboarding

import "context"

// Verifier resolves a GSTIN to its registered legal business name through a
// third-party tax registry. The registry integration is not wired yet, so
// the default implementation returns nothing and the column stays empty
// until a real verifier is configured.
type Verifier interface {
	LegalName(ctx context.Context, gstin string) (string, error)
}

// NoopVerifier never resolves a legal name.
type NoopVerifier struct{}

func (NoopVerifier) LegalName(context.Context, string) (string, error) { return "", nil }
