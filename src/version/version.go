package version

// Version is the notesbackup release string. It is overridden at build time
// via -ldflags "-X notesbackup/src/version.Version=...".
var Version = "0.1.0-dev"
