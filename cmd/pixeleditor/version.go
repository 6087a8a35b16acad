package main

import "fmt"

type versionCmd struct{ r *root }

func (v *versionCmd) Run() error {
	fmt.Fprintf(stdout(v.r), "%s version %s\n", v.r.program, version)
	if commit != "" {
		fmt.Fprintf(stdout(v.r), "commit %s built %s\n", commit, date)
	}
	return nil
}
