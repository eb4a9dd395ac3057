package pdbconv

// Version is set at build time with -ldflags "-X ...pdbconv.Version=..."
var Version = "0.3.0-dev"
