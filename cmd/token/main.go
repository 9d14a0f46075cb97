// Command token mints a service bearer token for calling the tool API,
// e.g. for the voice-agent orchestrator or local testing:
//
//	go run ./cmd/token -service voice-agent
package main

import (
	"flag"
	"fmt"
	"log"

	"grandhorizon/internal/config"
	jwtsvc "grandhorizon/internal/pkg/jwt"
)

func main() {
	service := flag.String("service", "voice-agent", "name of the calling service")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.ServiceTokenTTL)
	token, err := j.GenerateToken(*service)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
