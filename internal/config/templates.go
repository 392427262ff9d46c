package config

import (
	"fmt"
	"os"
)

func Template() string {
	return declarationTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("declarations already exist: %s", path)
		}
	}
	return os.WriteFile(path, []byte(declarationTemplate), 0o600)
}

const declarationTemplate = `# Acceptable errors per test routine.
# Type names resolve against the catalog of the loading program.

[[routine]]
name = "TestParsePort"
accept = ["*strconv.NumError"]

[[routine]]
name = "TestOpenMissing"
accept = ["*fs.PathError", "*os.SyscallError"]
`
