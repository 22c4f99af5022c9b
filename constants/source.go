package constants

// Record sources, recorded on vehicle records so a merge can say where a field came from.
const (
	SourceLookup = "regocheck"
	SourceManual = "manual"
)
