//go:build ignore
// +build ignore

// Manual concurrency check for the profile service.
//
// Usage:
//
//	SERVER_ADDR=http://localhost:8080 go run ./scripts/concurrency_test.go
//
// What it does:
//  1. Fires N concurrent POST /seed-demo-accounts requests and reports the
//     per-account statuses, to show that seeding stays idempotent under
//     concurrent callers.
//  2. Signs in as the demo reader, then fires N concurrent PUT /user/profile
//     requests with distinct booksRead values and reads the profile back:
//     profile updates are last-write-wins, so the final value must be one of
//     the written values (any one), never a torn document.
//
// Prerequisites: the server must be running with a reachable database.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
)

const defaultServerAddr = "http://localhost:8080"

const concurrency = 10

func main() {
	serverAddr := os.Getenv("SERVER_ADDR")
	if serverAddr == "" {
		serverAddr = defaultServerAddr
	}

	fmt.Printf("Target: %s\n\n", serverAddr)

	// Phase 1: concurrent seeding.
	fmt.Printf("Firing %d concurrent seed requests...\n", concurrency)
	var wg sync.WaitGroup
	statuses := make([]string, concurrency)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			resp, err := http.Post(serverAddr+"/seed-demo-accounts", "application/json", nil)
			if err != nil {
				statuses[slot] = "error: " + err.Error()
				return
			}
			defer resp.Body.Close()
			var payload struct {
				Results []struct {
					Email  string `json:"email"`
					Status string `json:"status"`
				} `json:"results"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
				statuses[slot] = "decode error: " + err.Error()
				return
			}
			s := ""
			for _, r := range payload.Results {
				s += fmt.Sprintf("%s=%s ", r.Email, r.Status)
			}
			statuses[slot] = s
		}(i)
	}
	wg.Wait()
	for i, s := range statuses {
		fmt.Printf("  seed[%d]: %s\n", i, s)
	}

	// Phase 2: sign in as demo reader.
	signinBody, _ := json.Marshal(map[string]string{
		"email":    "pembaca@perpustakaandigital.com",
		"password": "Demo123!Pembaca",
	})
	resp, err := http.Post(serverAddr+"/signin", "application/json", bytes.NewReader(signinBody))
	if err != nil {
		log.Fatalf("sign in failed: %v", err)
	}
	var signin struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signin); err != nil {
		log.Fatalf("sign in decode failed: %v", err)
	}
	resp.Body.Close()
	if signin.AccessToken == "" {
		log.Fatal("no access token returned; is the server seeded?")
	}

	// Phase 3: concurrent profile updates.
	fmt.Printf("\nFiring %d concurrent profile updates...\n", concurrency)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(booksRead int) {
			defer wg.Done()
			body, _ := json.Marshal(map[string]int{"booksRead": booksRead})
			req, _ := http.NewRequest(http.MethodPut, serverAddr+"/user/profile", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+signin.AccessToken)
			r, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Printf("  update(%d): %v\n", booksRead, err)
				return
			}
			r.Body.Close()
			fmt.Printf("  update(%d): status %d\n", booksRead, r.StatusCode)
		}(100 + i)
	}
	wg.Wait()

	// Phase 4: read the profile back.
	req, _ := http.NewRequest(http.MethodGet, serverAddr+"/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+signin.AccessToken)
	r, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("profile read failed: %v", err)
	}
	defer r.Body.Close()
	var profile struct {
		Name      string `json:"name"`
		BooksRead int    `json:"booksRead"`
	}
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Fatalf("profile decode failed: %v", err)
	}

	fmt.Printf("\nFinal profile: name=%q booksRead=%d\n", profile.Name, profile.BooksRead)
	if profile.BooksRead < 100 || profile.BooksRead >= 100+concurrency {
		log.Fatalf("FAIL: booksRead %d is not one of the written values", profile.BooksRead)
	}
	fmt.Println("OK: final document matches one of the concurrent writes (last write wins)")
}
