package main

import (
	"flag"
	"log"

	"github.com/smasonuk/icoview"
)

func main() {
	cfg := icoview.DefaultConfig()
	flag.IntVar(&cfg.Accuracy, "accuracy", cfg.Accuracy, "Initial subdivision depth of the sphere.")
	flag.IntVar(&cfg.MaxAccuracy, "max-accuracy", cfg.MaxAccuracy, "Highest depth the arrow keys can reach.")
	flag.BoolVar(&cfg.WhiteLight, "white", cfg.WhiteLight, "Switch the white light on.")
	flag.BoolVar(&cfg.YellowLight, "yellow", cfg.YellowLight, "Switch the yellow light on.")
	flag.BoolVar(&cfg.SmoothShading, "smooth", cfg.SmoothShading, "Use smooth instead of flat shading.")
	flag.BoolVar(&cfg.Wireframe, "wireframe", cfg.Wireframe, "Outline every triangle.")
	flag.Parse()

	log.Println("Application has started.")
	if err := icoview.RunGame(cfg); err != nil {
		log.Fatal(err)
	}
}
