package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, japaToken string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if japaToken != "" {
		req.Header.Set("X-Japa-Token", japaToken)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Japa Counter API Smoke Test\n")

	// 1. Fetch the mantra pattern
	color.Yellow("\n[PUBLIC] 1. Get Mantra Pattern")
	resp, body, err := sendRequest("GET", "/japa/pattern", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var patternResp map[string]interface{}
	json.Unmarshal(body, &patternResp)
	prettyPrint(patternResp)

	// 2. Start an anonymous session
	color.Yellow("\n[ANON] 2. Start Japa Session")
	resp, body, err = sendRequest("POST", "/japa/session/start", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var startResp map[string]interface{}
	json.Unmarshal(body, &startResp)
	prettyPrint(startResp)

	// Extract the minted anonymous token
	var japaToken string
	if data, ok := startResp["data"].(map[string]interface{}); ok {
		if t, ok := data["user_token"].(string); ok {
			japaToken = t
		}
	}
	if japaToken == "" {
		color.Red("No user_token returned, cannot continue")
		os.Exit(1)
	}
	color.Cyan("Using japa token: %s", japaToken)

	// 3. Record the first expected word
	color.Yellow("\n[ANON] 3. Record Word 'shyama'")
	resp, body, err = sendRequest("POST", "/japa/session/word", japaToken, map[string]interface{}{
		"word": "shyama",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var wordResp map[string]interface{}
	json.Unmarshal(body, &wordResp)
	prettyPrint(wordResp)

	// 4. Record a wrong word (should not advance)
	color.Yellow("\n[ANON] 4. Record Wrong Word 'banana'")
	resp, body, err = sendRequest("POST", "/japa/session/word", japaToken, map[string]interface{}{
		"word": "banana",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	json.Unmarshal(body, &wordResp)
	prettyPrint(wordResp)

	// 5. Read today's stats
	color.Yellow("\n[ANON] 5. Get Japa Stats")
	resp, body, err = sendRequest("GET", "/japa/stats", japaToken, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var statsResp map[string]interface{}
	json.Unmarshal(body, &statsResp)
	prettyPrint(statsResp)

	// 6. End the session
	color.Yellow("\n[ANON] 6. End Japa Session")
	resp, body, err = sendRequest("POST", "/japa/session/end", japaToken, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var endResp map[string]interface{}
	json.Unmarshal(body, &endResp)
	prettyPrint(endResp)

	// 7. Leaderboard
	color.Yellow("\n[PUBLIC] 7. Get Leaderboard")
	resp, body, err = sendRequest("GET", "/japa/leaderboard", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var lbResp map[string]interface{}
	json.Unmarshal(body, &lbResp)
	prettyPrint(lbResp)

	color.Cyan("\n✅ Smoke test finished")
}
