package main

import "github.com/spark-commodities/api-code-samples/cmd"

func main() {
	cmd.Execute()
}
