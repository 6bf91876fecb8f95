// SPDX-License-Identifier: MIT

// Command slequate fits Stocking–Lord equating constants from a YAML run file.
//
//	slequate run --config forms.yaml
//	slequate run --config forms.yaml --criterion q1 --output json
//	slequate binwidth --bins 10 --min 0 --max 40
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
