package main

// FileRecord holds what happened to one retained file.
type FileRecord struct {
	Path   string `yaml:"path"`
	Size   int    `yaml:"bytes"`
	Tokens int    `yaml:"tokens,omitempty"`
	Error  string `yaml:"error,omitempty"` // Set when the content could not be read
}

// RunResult is the outcome of a successful run.
type RunResult struct {
	Root         string       `yaml:"root"`
	AbsRoot      string       `yaml:"abs_root"`
	Project      string       `yaml:"project"`
	OutputPath   string       `yaml:"output"`
	Consolidated int          `yaml:"consolidated"` // Files whose content was appended
	Failed       int          `yaml:"failed"`
	Tokens       int          `yaml:"tokens,omitempty"`
	Files        []FileRecord `yaml:"files"`
}
