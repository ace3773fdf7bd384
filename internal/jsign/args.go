package jsign

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// SignatureText builds the multi-line caption rendered inside the visible
// signature box: signer name plus the local signing time.
func SignatureText(name string, now time.Time) string {
	if name == "" {
		name = fallbackSigner
	}
	tz := now.Format("-0700")
	if len(tz) == 5 {
		tz = tz[:3] + "'" + tz[3:] + "'"
	}
	lines := []string{
		"Digitally signed",
		"by " + name,
		"Date: " + now.Format("2006.01.02"),
		now.Format("15:04:05") + " " + tz,
	}
	return strings.Join(lines, "\n")
}

// pageNumber parses the user-typed page, clamping to a minimum of 1.
func pageNumber(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// placementRect returns the signature rectangle for a placement label.
// Bottom-right coordinates are negative offsets from the page's right edge.
func placementRect(placement string) (llx, lly, urx, ury int) {
	if placement == PlacementBottomLeft {
		return sigMarginX, sigMarginY, sigMarginX + sigWidth, sigMarginY + sigHeight
	}
	return -(sigMarginX + sigWidth), sigMarginY, -sigMarginX, sigMarginY + sigHeight
}

// printingValue maps a printing policy label to the JSignPdf enum value,
// defaulting to the permissive one.
func printingValue(label string) string {
	switch label {
	case PrintingAllowDegraded:
		return "ALLOW_DEGRADED_PRINTING"
	case PrintingDisallow:
		return "DISALLOW_PRINTING"
	default:
		return "ALLOW_PRINTING"
	}
}

func normalizeSuffix(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultOutputSuffix
	}
	return s
}

// Args maps an options snapshot to the JSignPdf argument vector, with the
// input document path as the final token. Returned notes are diagnostics
// for the transcript; they never abort the job.
func Args(o Options, now time.Time) (argv, notes []string) {
	level := "CERTIFIED_NO_CHANGES_ALLOWED"
	if o.Permissions.AdditionalSignatures {
		level = "CERTIFIED_FORM_FILLING_AND_ANNOTATIONS"
	}
	keystore := o.Keystore
	if keystore == "" {
		keystore = DefaultKeystore()
	}

	argv = []string{
		"-kst", keystore,
		"-cl", level,
		"-pe", "PASSWORD",
		"-opwd", o.OwnerPassword,
		"-os", normalizeSuffix(o.OutputSuffix),
		"-d", filepath.Dir(o.PDFPath),
	}

	alias := strings.TrimSpace(o.Alias)
	if alias != "" {
		argv = append(argv, "-ka", alias)
	}
	signer := alias
	if signer == "" {
		signer = fallbackSigner
	}
	argv = append(argv, "-sn", signer, "--l2-text", SignatureText(signer, now))

	llx, lly, urx, ury := placementRect(o.Placement)
	argv = append(argv,
		"-V",
		"-pg", strconv.Itoa(pageNumber(o.Page)),
		"-llx", strconv.Itoa(llx),
		"-lly", strconv.Itoa(lly),
		"-urx", strconv.Itoa(urx),
		"-ury", strconv.Itoa(ury),
		"-fs", "10",
	)

	if o.ImagePath != "" {
		if _, err := os.Stat(o.ImagePath); err == nil {
			argv = append(argv, "--img-path", o.ImagePath, "--render-mode", "GRAPHIC_AND_DESCRIPTION")
		} else {
			notes = append(notes, "Signature image not found; continuing without background image.")
		}
	}

	if !o.Permissions.Commenting {
		argv = append(argv, "--disable-modify-annotations")
	}
	if !o.Permissions.Copying {
		argv = append(argv, "--disable-copy")
	}
	if !o.Permissions.AccessibilityCopy {
		argv = append(argv, "--disable-screen-readers")
	}
	if !o.Permissions.Editing {
		argv = append(argv, "--disable-modify-content")
	}
	if !o.Permissions.FormFill {
		argv = append(argv, "--disable-fill")
	}

	argv = append(argv, "-pr", printingValue(o.Printing))

	if pwd := strings.TrimSpace(o.UserPassword); pwd != "" {
		argv = append(argv, "-upwd", pwd)
	}
	if ts := strings.TrimSpace(o.TSAURL); ts != "" {
		argv = append(argv, "-ts", ts)
	}

	return append(argv, o.PDFPath), notes
}

// OutputPath returns where JSignPdf will write the signed document: the
// input filename with the output suffix, beside the input.
func OutputPath(o Options) string {
	base := filepath.Base(o.PDFPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(o.PDFPath), stem+normalizeSuffix(o.OutputSuffix)+".pdf")
}
