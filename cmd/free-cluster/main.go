package main

import (
	"log"
	"os"
	"time"

	"github.com/drakos74/free-cluster/internal/cluster"
	"github.com/drakos74/free-cluster/internal/data"
	"github.com/drakos74/free-cluster/internal/eval"
	"github.com/rs/zerolog"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	path := data.DefaultPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	frame, err := data.Load(path, data.NewConfig())
	if err != nil {
		log.Fatalf("error loading dataset: %s", err.Error())
	}

	evaluator := eval.New(os.Stdout)
	err = evaluator.Run(frame, cluster.Variants(time.Now().UnixNano()), eval.NewConfig())
	if err != nil {
		log.Fatalf("error running evaluation: %s", err.Error())
	}
}
