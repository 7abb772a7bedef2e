package version

// Name identifies the service in logs, traces, and event subjects.
const Name = "budgetd"

// Version is stamped at build time via -ldflags.
var Version = "dev"
