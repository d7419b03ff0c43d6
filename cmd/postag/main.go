// Command postag trains a hidden Markov part-of-speech tagger
// on a tab-separated corpus and reports its token accuracy on
// the held-out split.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/unixpickle/essentials"

	"github.com/shaikhzhas/postag"
	"github.com/shaikhzhas/postag/corpus"
)

func main() {
	var dataPath string
	var configPath string
	var savePath string
	var loadPath string
	flag.StringVar(&dataPath, "data", "", "path to the corpus file")
	flag.StringVar(&configPath, "config", "", "optional yaml config file")
	flag.StringVar(&savePath, "save", "", "write the trained model to this file")
	flag.StringVar(&loadPath, "load", "", "load a trained model instead of training")
	flag.Parse()

	if dataPath == "" {
		essentials.Die("Required flag: -data. See -help.")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = LoadConfig(configPath)
		if err != nil {
			essentials.Die(err)
		}
	}

	data, err := corpus.ReadFile(dataPath)
	if err != nil {
		essentials.Die(err)
	}
	train, test := data.Split(cfg.Split, cfg.Seed)
	logger.Info("read corpus", "sentences", data.Len(), "tokens", data.TokenCount(),
		"train", train.Len(), "test", test.Len())

	var model *postag.Model
	if loadPath != "" {
		model, err = postag.LoadModel(loadPath)
		if err != nil {
			essentials.Die(err)
		}
		logger.Info("loaded model", "path", loadPath,
			"tags", model.Tags.Len(), "words", model.Words.Len())
	} else {
		model, err = postag.Train(train.Sentences)
		if err != nil {
			essentials.Die(err)
		}
		logger.Info("trained model", "tags", model.Tags.Len(), "words", model.Words.Len())
	}

	if savePath != "" {
		if err := postag.SaveModel(savePath, model); err != nil {
			essentials.Die(err)
		}
		logger.Info("saved model", "path", savePath)
	}

	var totalTokens int
	var correctTokens int
	var totalSequences int
	var impossible int
	for _, s := range test.Sentences {
		predicted, err := model.Decode(s.Words)
		if postag.IsImpossible(err) {
			impossible++
		} else if err != nil {
			essentials.Die(err)
		}
		totalTokens += len(s.Tags)
		totalSequences++
		for i, tag := range predicted {
			if s.Tags[i] == tag {
				correctTokens++
			}
		}
	}
	fmt.Printf("Got %d/%d for %.02f%% accuracy (%.02f%% of sequences impossible)\n",
		correctTokens, totalTokens,
		100*float64(correctTokens)/float64(totalTokens),
		100*float64(impossible)/float64(totalSequences))
}
