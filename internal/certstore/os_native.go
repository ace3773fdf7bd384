//go:build (darwin && cgo) || windows

package certstore

import (
	"context"
	"fmt"
	"time"

	smimestore "github.com/github/smimesign/certstore"
)

// NativeLister enumerates signing identities straight from the OS
// certificate store, keeping only entries with a usable private key inside
// their validity window.
type NativeLister struct{}

func (NativeLister) List(ctx context.Context) ([]string, error) {
	st, err := smimestore.Open()
	if err != nil {
		return nil, fmt.Errorf("open system store: %w", err)
	}
	defer st.Close()

	identities, err := st.Identities()
	if err != nil {
		return nil, fmt.Errorf("list system identities: %w", err)
	}

	var subjects []string
	for _, id := range identities {
		cert, err := id.Certificate()
		if err != nil {
			id.Close()
			continue
		}
		if time.Now().After(cert.NotAfter) || time.Now().Before(cert.NotBefore) {
			id.Close()
			continue
		}
		signer, err := id.Signer()
		if err == nil && signer != nil {
			subjects = append(subjects, cert.Subject.String())
		}
		id.Close()
	}
	return DedupAliases(subjects), nil
}
