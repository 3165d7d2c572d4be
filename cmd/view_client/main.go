package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

func main() {
	baseURL := flag.String("addr", "http://localhost:8080", "Base URL of the weather display API")
	search := flag.String("search", "", "Search a location before reading the view")
	lang := flag.String("lang", "", "Switch the display language before reading the view")
	flag.Parse()

	fmt.Println("Weather Display Client")
	fmt.Println("======================")

	client := resty.New().
		SetBaseURL(*baseURL).
		SetTimeout(30 * time.Second)

	if *lang != "" {
		fmt.Printf("Switching language to %s...\n", *lang)
		resp, err := client.R().
			SetBody(map[string]string{"language": *lang}).
			Post("/api/language")
		exitOnFailure("changing language", resp, err)
	}

	if *search != "" {
		fmt.Printf("Searching %s...\n", *search)
		resp, err := client.R().
			SetBody(map[string]string{"query": *search}).
			Post("/api/search")
		exitOnFailure("searching", resp, err)
	}

	// The server loads the first snapshot in the background
	var resp *resty.Response
	var err error
	for attempt := 0; attempt < 10; attempt++ {
		resp, err = client.R().Get("/api/view")
		if err != nil || resp.StatusCode() != 404 {
			break
		}
		fmt.Println("Waiting for weather data...")
		time.Sleep(time.Second)
	}
	exitOnFailure("fetching view", resp, err)

	// Pretty print the result
	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		fmt.Printf("Error decoding view: %v\n", err)
		os.Exit(1)
	}
	prettyJSON, _ := json.MarshalIndent(body["view"], "", "  ")
	fmt.Printf("\n%s\n", string(prettyJSON))

	alerts, err := client.R().Get("/api/alerts")
	if err == nil && alerts.IsSuccess() {
		fmt.Printf("\nPending alerts: %s\n", alerts.String())
	}
}

func exitOnFailure(action string, resp *resty.Response, err error) {
	if err != nil {
		fmt.Printf("Error %s: %v\n", action, err)
		os.Exit(1)
	}
	if resp.IsError() {
		fmt.Printf("Error %s: %s %s\n", action, resp.Status(), resp.String())
		os.Exit(1)
	}
}
