// Package misc keeps build time program identification in a single place.
package misc

// Values are set at build time via -ldflags "-X f2v/misc.appVersion=... -X f2v/misc.gitHash=...".
var (
	appName    = "f2v"
	appVersion = "development"
	gitHash    = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return appVersion
}

func GetGitHash() string {
	return gitHash
}
