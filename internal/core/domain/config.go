package domain

// Config holds the resolved inputs for a single search invocation.
// It is constructed once from raw arguments and never mutated.
type Config struct {
	// Query is the literal substring to look for.
	Query string

	// FilePath names the file whose lines are searched.
	FilePath string
}

// BuildConfig resolves a Config from raw argument strings.
//
// The first element is the invoking program name and is skipped.
// The second element becomes Query and the third FilePath; anything
// past the third is ignored. Presence is the only validation done
// here: FilePath is not checked against the filesystem.
func BuildConfig(args []string) (Config, error) {
	if len(args) < 2 {
		return Config{}, ErrMissingQuery
	}
	if len(args) < 3 {
		return Config{}, ErrMissingFilePath
	}
	return Config{Query: args[1], FilePath: args[2]}, nil
}
