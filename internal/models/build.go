package models

type BuildInformation struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
}

const shortCommitLength = 7

// VersionString returns the version, suffixed with the short
// commit hash for latest builds.
func (b BuildInformation) VersionString() string {
	switch {
	case b.Version != "latest",
		b.Commit == "unknown",
		len(b.Commit) < shortCommitLength:
		return b.Version
	default:
		return b.Version + "-" + b.Commit[:shortCommitLength]
	}
}
