package config

import (
	"fmt"
	"os"
)

func Template() string {
	return wireTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(wireTemplate), 0o600)
}

const wireTemplate = `[wire]
# little | big
byte_order = "little"
# u8 | u16 | u32 | u64
length_prefix = "u64"
# largest sequence count accepted when decoding
max_seq_len = 1048576
metrics = false
`
