package naming

// The pools below are the complete vocabulary for synthesized identifiers.
// Order matters: selection indexes into these slices through the shared
// random source, so reordering a pool changes deterministic output under
// a fixed seed.
//
// The words are chosen to read like a production iOS codebase — generic
// infrastructure nouns and verbs rather than obviously generated strings.

// ClassPrefixes are the leading components of class names and filenames.
var ClassPrefixes = []string{
	"User", "Network", "Data", "Image", "Cache", "Session", "Auth",
	"Profile", "Content", "Media", "Storage", "Sync", "Cloud", "Local",
	"Remote", "API", "Database", "Model", "View", "Controller",
}

// ClassSuffixes are the trailing components of class names and filenames.
var ClassSuffixes = []string{
	"Manager", "Service", "Handler", "Provider", "Controller", "Processor",
	"Coordinator", "Helper", "Utility", "Adapter", "Builder", "Factory",
	"Validator", "Parser", "Mapper", "Repository", "Store",
}

// ClassQualifiers are optional adjective prefixes prepended to class names.
var ClassQualifiers = []string{
	"Secure", "Fast", "Smart", "Advanced", "Custom",
}

// FileQualifiers are optional suffix words appended to filenames (before
// the extension) to widen the filename space beyond plain prefix+suffix.
var FileQualifiers = []string{
	"Helper", "Extension", "Utils",
}

// MethodVerbs are the leading components of method names.
var MethodVerbs = []string{
	"fetch", "load", "save", "update", "delete", "process", "validate",
	"parse", "transform", "handle", "configure", "initialize", "prepare",
	"execute", "perform", "manage", "sync", "cache", "clear", "refresh",
}

// MethodObjects are the trailing components of method names.
var MethodObjects = []string{
	"User", "Data", "Profile", "Content", "Image", "Token", "Session",
	"Settings", "Preferences", "Cache", "Request", "Response", "Model",
	"Configuration", "State", "Event", "Notification", "Resource",
}

// PropertyNames are candidate property identifiers.
var PropertyNames = []string{
	"isActive", "isEnabled", "isLoading", "isValid", "isCached",
	"userId", "sessionId", "timestamp", "expiresAt", "createdAt",
	"cache", "queue", "storage", "configuration", "settings",
	"dataSource", "delegate", "observers", "listeners",
}

// LiteralWords seed synthesized string literals embedded in decoy code.
var LiteralWords = []string{
	"error", "success", "warning", "info", "data",
	"user", "session", "token", "cache", "sync",
}
