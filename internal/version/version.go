package version

// Current is the application version. Overridden at release time with
// -ldflags "-X .../internal/version.Current=v1.2.3".
var Current = "dev"
