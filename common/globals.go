package common

// SableVersion is the current Sable version as a string.
const SableVersion string = "0.1.0"

// SableModuleFileName is the name for Sable module files.
const SableModuleFileName string = "sable-mod.toml"

// SableFileExt is the file extension for a Sable source file.
const SableFileExt string = ".sb"
