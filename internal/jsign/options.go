package jsign

import "runtime"

// Visible signature placement labels as shown in the UI.
const (
	PlacementBottomLeft  = "Bottom left"
	PlacementBottomRight = "Bottom right"
)

// Printing policy labels as shown in the UI.
const (
	PrintingAllow         = "Allow printing"
	PrintingAllowDegraded = "Allow degraded printing"
	PrintingDisallow      = "Disallow printing"
)

const (
	DefaultOutputSuffix = "_signed"
	DefaultPage         = "1"

	fallbackSigner = "Certified signer"
)

// Visible signature box geometry, in page units.
const (
	sigWidth   = 240
	sigHeight  = 90
	sigMarginX = 36
	sigMarginY = 36
)

// Permissions are the document permissions embedded in the signed PDF.
// JSignPdf is permissive by default; a permission turned off here becomes
// an explicit --disable-* restriction flag.
type Permissions struct {
	Commenting           bool
	Copying              bool
	AccessibilityCopy    bool
	Editing              bool
	FormFill             bool
	AdditionalSignatures bool
}

// Options is an immutable snapshot of the user's choices at the moment a
// signing job is started.
type Options struct {
	PDFPath   string
	JavaPath  string
	JarPath   string
	ImagePath string

	Keystore      string
	Alias         string
	OwnerPassword string
	UserPassword  string
	TSAURL        string
	OutputSuffix  string

	Permissions Permissions
	Printing    string

	// Page is kept as typed by the user; Args parses and clamps it.
	Page      string
	Placement string
}

// DefaultKeystore returns the JSignPdf keystore type for the running OS.
func DefaultKeystore() string {
	switch runtime.GOOS {
	case "windows":
		return "WINDOWS-MY"
	case "darwin":
		return "KEYCHAIN"
	default:
		return "PKCS12"
	}
}
