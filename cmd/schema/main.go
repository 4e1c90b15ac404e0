package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/storymaker/tracking-api/infrastructure/database/schema"
)

func setupLogger() {
	// Logs vão para stderr para não misturar com o SQL impresso
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

func main() {
	policies := flag.Bool("policies", false, "inclui a seção de row level security do Supabase")
	output := flag.String("o", "", "arquivo de saída (padrão: stdout)")
	flag.Parse()

	setupLogger()

	out := os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			log.Fatalf("ERRO ao criar arquivo de saída %s: %v", *output, err)
		}
		defer file.Close()
		out = file
	}

	if _, err := fmt.Fprint(out, schema.Script(*policies)); err != nil {
		log.Fatalf("ERRO ao escrever script: %v", err)
	}

	if *output != "" {
		log.Printf("Script gravado em %s. Execute-o no editor SQL do banco.", *output)
	}
}
