package jsign

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// argValue returns the token following the first occurrence of flag.
func argValue(t *testing.T, argv []string, flag string) string {
	t.Helper()
	for i, tok := range argv {
		if tok == flag {
			if i+1 >= len(argv) {
				t.Fatalf("flag %s has no value", flag)
			}
			return argv[i+1]
		}
	}
	t.Fatalf("flag %s not found in %v", flag, argv)
	return ""
}

func hasToken(argv []string, tok string) bool {
	for _, a := range argv {
		if a == tok {
			return true
		}
	}
	return false
}

func baseOptions(pdf string) Options {
	return Options{
		PDFPath:       pdf,
		Keystore:      "WINDOWS-MY",
		Alias:         "Jane Doe",
		OwnerPassword: "secret",
		OutputSuffix:  "_signed",
		Page:          "1",
		Placement:     PlacementBottomRight,
		Printing:      PrintingAllow,
		Permissions: Permissions{
			Commenting:        true,
			AccessibilityCopy: true,
		},
	}
}

func TestSignatureText(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 5, 0, time.FixedZone("CET", 2*3600))
	got := SignatureText("Jane Doe", now)
	want := "Digitally signed\nby Jane Doe\nDate: 2025.03.14\n09:30:05 +02'00'"
	if got != want {
		t.Fatalf("SignatureText=%q want %q", got, want)
	}
}

func TestSignatureTextFallbackName(t *testing.T) {
	got := SignatureText("", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if !strings.Contains(got, "by Certified signer") {
		t.Fatalf("expected fallback signer name, got %q", got)
	}
}

func TestArgsTokenOrder(t *testing.T) {
	pdf := filepath.Join(string(filepath.Separator)+"docs", "report.pdf")
	argv, _ := Args(baseOptions(pdf), time.Now())

	if argv[len(argv)-1] != pdf {
		t.Fatalf("input path must be the final token, got %q", argv[len(argv)-1])
	}
	if argv[0] != "-kst" || argv[1] != "WINDOWS-MY" {
		t.Fatalf("unexpected leading tokens: %v", argv[:2])
	}
	if got := argValue(t, argv, "-cl"); got != "CERTIFIED_NO_CHANGES_ALLOWED" {
		t.Fatalf("certification level=%q", got)
	}
	if got := argValue(t, argv, "-pe"); got != "PASSWORD" {
		t.Fatalf("-pe=%q", got)
	}
	if got := argValue(t, argv, "-opwd"); got != "secret" {
		t.Fatalf("-opwd=%q", got)
	}
	if got := argValue(t, argv, "-os"); got != "_signed" {
		t.Fatalf("-os=%q", got)
	}
	if got := argValue(t, argv, "-d"); got != filepath.Dir(pdf) {
		t.Fatalf("-d=%q want %q", got, filepath.Dir(pdf))
	}
	if got := argValue(t, argv, "-ka"); got != "Jane Doe" {
		t.Fatalf("-ka=%q", got)
	}
	if got := argValue(t, argv, "-sn"); got != "Jane Doe" {
		t.Fatalf("-sn=%q", got)
	}
	if got := argValue(t, argv, "-fs"); got != "10" {
		t.Fatalf("-fs=%q", got)
	}
	if !hasToken(argv, "-V") {
		t.Fatal("visible signature flag missing")
	}
}

func TestArgsEmptyAliasOmitsKa(t *testing.T) {
	o := baseOptions("doc.pdf")
	o.Alias = "  "
	argv, _ := Args(o, time.Now())

	if hasToken(argv, "-ka") {
		t.Fatal("-ka must be omitted for a blank alias")
	}
	if got := argValue(t, argv, "-sn"); got != "Certified signer" {
		t.Fatalf("-sn=%q want fallback signer", got)
	}
	if got := argValue(t, argv, "--l2-text"); !strings.Contains(got, "by Certified signer") {
		t.Fatalf("caption missing fallback signer: %q", got)
	}
}

func TestArgsCertificationLevel(t *testing.T) {
	o := baseOptions("doc.pdf")
	o.Permissions.AdditionalSignatures = true
	argv, _ := Args(o, time.Now())
	if got := argValue(t, argv, "-cl"); got != "CERTIFIED_FORM_FILLING_AND_ANNOTATIONS" {
		t.Fatalf("certification level=%q", got)
	}
}

func TestArgsPlacement(t *testing.T) {
	tests := []struct {
		placement          string
		llx, lly, urx, ury string
	}{
		{PlacementBottomLeft, "36", "36", "276", "126"},
		{PlacementBottomRight, "-276", "36", "-36", "126"},
		{"something else", "-276", "36", "-36", "126"},
	}
	for _, tt := range tests {
		o := baseOptions("doc.pdf")
		o.Placement = tt.placement
		argv, _ := Args(o, time.Now())
		if got := argValue(t, argv, "-llx"); got != tt.llx {
			t.Fatalf("%s: -llx=%q want %q", tt.placement, got, tt.llx)
		}
		if got := argValue(t, argv, "-lly"); got != tt.lly {
			t.Fatalf("%s: -lly=%q want %q", tt.placement, got, tt.lly)
		}
		if got := argValue(t, argv, "-urx"); got != tt.urx {
			t.Fatalf("%s: -urx=%q want %q", tt.placement, got, tt.urx)
		}
		if got := argValue(t, argv, "-ury"); got != tt.ury {
			t.Fatalf("%s: -ury=%q want %q", tt.placement, got, tt.ury)
		}
	}
}

func TestArgsPageClamping(t *testing.T) {
	tests := []struct {
		page string
		want string
	}{
		{"3", "3"},
		{" 7 ", "7"},
		{"0", "1"},
		{"-2", "1"},
		{"abc", "1"},
		{"", "1"},
	}
	for _, tt := range tests {
		o := baseOptions("doc.pdf")
		o.Page = tt.page
		argv, _ := Args(o, time.Now())
		if got := argValue(t, argv, "-pg"); got != tt.want {
			t.Fatalf("page %q: -pg=%q want %q", tt.page, got, tt.want)
		}
	}
}

func TestArgsPermissionFlags(t *testing.T) {
	o := baseOptions("doc.pdf")
	o.Permissions = Permissions{
		Commenting:        true,
		Copying:           true,
		AccessibilityCopy: true,
		Editing:           true,
		FormFill:          true,
	}
	argv, _ := Args(o, time.Now())
	for _, flag := range []string{
		"--disable-modify-annotations", "--disable-copy",
		"--disable-screen-readers", "--disable-modify-content", "--disable-fill",
	} {
		if hasToken(argv, flag) {
			t.Fatalf("unexpected restriction flag %s with all permissions granted", flag)
		}
	}

	o.Permissions = Permissions{}
	argv, _ = Args(o, time.Now())
	for _, flag := range []string{
		"--disable-modify-annotations", "--disable-copy",
		"--disable-screen-readers", "--disable-modify-content", "--disable-fill",
	} {
		if !hasToken(argv, flag) {
			t.Fatalf("missing restriction flag %s with all permissions revoked", flag)
		}
	}
}

func TestArgsPrinting(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{PrintingAllow, "ALLOW_PRINTING"},
		{PrintingAllowDegraded, "ALLOW_DEGRADED_PRINTING"},
		{PrintingDisallow, "DISALLOW_PRINTING"},
		{"unknown", "ALLOW_PRINTING"},
	}
	for _, tt := range tests {
		o := baseOptions("doc.pdf")
		o.Printing = tt.label
		argv, _ := Args(o, time.Now())
		if got := argValue(t, argv, "-pr"); got != tt.want {
			t.Fatalf("printing %q: -pr=%q want %q", tt.label, got, tt.want)
		}
	}
}

func TestArgsOptionalFields(t *testing.T) {
	o := baseOptions("doc.pdf")
	argv, _ := Args(o, time.Now())
	if hasToken(argv, "-upwd") || hasToken(argv, "-ts") {
		t.Fatal("optional flags present without values")
	}

	o.UserPassword = "readerpw"
	o.TSAURL = "https://tsa.example.com"
	argv, _ = Args(o, time.Now())
	if got := argValue(t, argv, "-upwd"); got != "readerpw" {
		t.Fatalf("-upwd=%q", got)
	}
	if got := argValue(t, argv, "-ts"); got != "https://tsa.example.com" {
		t.Fatalf("-ts=%q", got)
	}
}

func TestArgsSignatureImage(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "stamp.png")
	if err := os.WriteFile(img, []byte("png"), 0600); err != nil {
		t.Fatal(err)
	}

	o := baseOptions("doc.pdf")
	o.ImagePath = img
	argv, notes := Args(o, time.Now())
	if got := argValue(t, argv, "--img-path"); got != img {
		t.Fatalf("--img-path=%q", got)
	}
	if got := argValue(t, argv, "--render-mode"); got != "GRAPHIC_AND_DESCRIPTION" {
		t.Fatalf("--render-mode=%q", got)
	}
	if len(notes) != 0 {
		t.Fatalf("unexpected notes: %v", notes)
	}

	o.ImagePath = filepath.Join(dir, "missing.png")
	argv, notes = Args(o, time.Now())
	if hasToken(argv, "--img-path") {
		t.Fatal("--img-path present for a missing file")
	}
	if len(notes) != 1 {
		t.Fatalf("expected one note for missing image, got %v", notes)
	}

	o.ImagePath = ""
	argv, notes = Args(o, time.Now())
	if hasToken(argv, "--img-path") || len(notes) != 0 {
		t.Fatalf("empty image path must be silent, argv=%v notes=%v", argv, notes)
	}
}

func TestArgsDefaultKeystore(t *testing.T) {
	o := baseOptions("doc.pdf")
	o.Keystore = ""
	argv, _ := Args(o, time.Now())
	if got := argValue(t, argv, "-kst"); got != DefaultKeystore() {
		t.Fatalf("-kst=%q want %q", got, DefaultKeystore())
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		pdf    string
		suffix string
		want   string
	}{
		{filepath.Join("docs", "report.pdf"), "_signed", filepath.Join("docs", "report_signed.pdf")},
		{filepath.Join("docs", "report.pdf"), "", filepath.Join("docs", "report_signed.pdf")},
		{filepath.Join("docs", "report.pdf"), "-sealed", filepath.Join("docs", "report-sealed.pdf")},
		{"noext", "_signed", "noext_signed.pdf"},
	}
	for _, tt := range tests {
		o := Options{PDFPath: tt.pdf, OutputSuffix: tt.suffix}
		if got := OutputPath(o); got != tt.want {
			t.Fatalf("OutputPath(%q,%q)=%q want %q", tt.pdf, tt.suffix, got, tt.want)
		}
	}
}
