package domain

// TestFunc represents a top-level test function discovered in a test file
type TestFunc struct {
	Name     string   // Declared function name, e.g. "TestCreateUser"
	File     string   // Full path to the file it was found in
	Line     int      // 1-based line number of the declaration
	Subtests []string // t.Run string literals found inside the body, in source order (duplicates kept)
}
