package main

import "github.com/povarna/generative-ai-agents/web-rag-agent/internal/cli"

func main() {
	cli.Execute()
}
