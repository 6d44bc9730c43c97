package main

import (
	"fmt"
	"os"

	"github.com/abhaysalunke711/bank-statement-analyzer/cmd/analyze"
	"github.com/abhaysalunke711/bank-statement-analyzer/cmd/categorize"
	"github.com/abhaysalunke711/bank-statement-analyzer/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
