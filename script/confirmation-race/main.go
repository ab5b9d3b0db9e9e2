package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/usecase/signature"
)

// CreateOrderResponse is the subset of the create-order body the race needs
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
}

// Credits is the subset of the credit counters the race checks
type Credits struct {
	PaidCredits      int64 `json:"paidCredits"`
	AvailableCredits int64 `json:"availableCredits"`
}

// RaceStats aggregates results across every order
type RaceStats struct {
	Orders        int
	Confirmations int
	Granted       int
	Duplicates    int
	Failures      int
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	Lock          sync.Mutex
}

func (s *RaceStats) record(status int, granted, duplicate bool, elapsed time.Duration) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.Confirmations++
	s.StatusCounts[status]++
	s.ResponseTimes = append(s.ResponseTimes, elapsed)
	switch {
	case granted:
		s.Granted++
	case duplicate:
		s.Duplicates++
	default:
		s.Failures++
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	phone := flag.String("phone", "9876543210", "Phone number of the paying user")
	orders := flag.Int("orders", 10, "Number of orders to create")
	racers := flag.Int("c", 8, "Concurrent confirmations per order, split between callback and webhook")
	credits := flag.Int64("credits", 10, "Credits purchased per order")
	keySecret := flag.String("key-secret", os.Getenv("CE_GATEWAY_KEY_SECRET"), "Gateway API key secret")
	webhookSecret := flag.String("webhook-secret", os.Getenv("CE_GATEWAY_WEBHOOK_SECRET"), "Gateway webhook secret")
	flag.Parse()

	if *keySecret == "" || *webhookSecret == "" {
		fmt.Println("Both -key-secret and -webhook-secret (or CE_GATEWAY_* variables) are required")
		os.Exit(2)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	stats := &RaceStats{StatusCounts: make(map[int]int)}

	fmt.Printf("Racing %d confirmations on each of %d orders against %s\n", *racers, *orders, *baseURL)

	var userID string
	var before Credits
	startTime := time.Now()

	for i := 0; i < *orders; i++ {
		order, err := createOrder(client, *baseURL, *phone, *credits)
		if err != nil {
			fmt.Printf("Create order %d failed: %v\n", i+1, err)
			os.Exit(1)
		}
		if userID == "" {
			userID = order.UserID
			if before, err = getCredits(client, *baseURL, userID); err != nil {
				fmt.Printf("Reading credits failed: %v\n", err)
				os.Exit(1)
			}
		}
		stats.Orders++

		paymentID := fmt.Sprintf("pay_race_%d_%d", time.Now().UnixNano(), i)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for r := 0; r < *racers; r++ {
			wg.Add(1)
			go func(r int) {
				defer wg.Done()
				<-start

				begin := time.Now()
				var status int
				var body []byte
				if r%2 == 0 {
					status, body = confirmCallback(client, *baseURL, order.OrderID, paymentID, *keySecret)
				} else {
					eventID := fmt.Sprintf("evt_%s_%d", order.OrderID, r)
					status, body = deliverWebhook(client, *baseURL, eventID, order.OrderID, paymentID, *webhookSecret)
				}
				granted := status == http.StatusOK &&
					(bytes.Contains(body, []byte(`"creditsGranted"`)) || bytes.Contains(body, []byte(`"outcome":"processed"`)))
				duplicate := status == http.StatusBadRequest || bytes.Contains(body, []byte(`"outcome":"duplicate"`))
				stats.record(status, granted, duplicate, time.Since(begin))
			}(r)
		}
		close(start)
		wg.Wait()
	}

	after, err := getCredits(client, *baseURL, userID)
	if err != nil {
		fmt.Printf("Reading credits failed: %v\n", err)
		os.Exit(1)
	}

	printStats(stats, time.Since(startTime))

	expected := int64(stats.Orders) * *credits
	gained := after.PaidCredits - before.PaidCredits
	fmt.Printf("\nPaid credits gained: %d (expected %d)\n", gained, expected)
	if gained != expected || stats.Granted != stats.Orders {
		fmt.Println("RESULT: FAIL, credits were not granted exactly once per order")
		os.Exit(1)
	}
	fmt.Println("RESULT: PASS")
}

func createOrder(client *http.Client, baseURL, phone string, credits int64) (*CreateOrderResponse, error) {
	status, body, err := postJSON(client, baseURL+"/api/payment/create-order",
		map[string]any{"phoneNumber": phone, "credits": credits}, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", status, body)
	}
	var out CreateOrderResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func confirmCallback(client *http.Client, baseURL, orderID, paymentID, secret string) (int, []byte) {
	sig := signature.Sign(signature.ClientCallbackMessage(orderID, paymentID), secret)
	status, body, err := postJSON(client, baseURL+"/api/payment/verify", map[string]string{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  sig,
	}, nil)
	if err != nil {
		return 0, []byte(err.Error())
	}
	return status, body
}

func deliverWebhook(client *http.Client, baseURL, eventID, orderID, paymentID, secret string) (int, []byte) {
	payload := map[string]any{
		"event": "payment.captured",
		"payload": map[string]any{
			"payment": map[string]any{
				"entity": map[string]any{"id": paymentID, "order_id": orderID, "status": "captured"},
			},
		},
	}
	raw, _ := json.Marshal(payload)
	status, body, err := postRaw(client, baseURL+"/api/payment/webhook", raw, map[string]string{
		"X-Razorpay-Signature": signature.Sign(raw, secret),
		"X-Razorpay-Event-Id":  eventID,
	})
	if err != nil {
		return 0, []byte(err.Error())
	}
	return status, body
}

func getCredits(client *http.Client, baseURL, userID string) (Credits, error) {
	var out Credits
	resp, err := client.Get(baseURL + "/api/users/" + userID + "/credits")
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("status %d", resp.StatusCode)
	}
	return out, json.NewDecoder(resp.Body).Decode(&out)
}

func postJSON(client *http.Client, url string, payload any, headers map[string]string) (int, []byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	return postRaw(client, url, raw, headers)
}

func postRaw(client *http.Client, url string, raw []byte, headers map[string]string) (int, []byte, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}

func printStats(stats *RaceStats, total time.Duration) {
	fmt.Println("\n=== Confirmation Race Results ===")
	fmt.Printf("Orders:                %d\n", stats.Orders)
	fmt.Printf("Confirmations:         %d\n", stats.Confirmations)
	fmt.Printf("Granted:               %d\n", stats.Granted)
	fmt.Printf("Duplicates:            %d\n", stats.Duplicates)
	fmt.Printf("Failures:              %d\n", stats.Failures)
	fmt.Printf("Total time:            %v\n", total)

	if len(stats.ResponseTimes) == 0 {
		return
	}
	sort.Slice(stats.ResponseTimes, func(i, j int) bool { return stats.ResponseTimes[i] < stats.ResponseTimes[j] })
	var sum time.Duration
	for _, d := range stats.ResponseTimes {
		sum += d
	}
	n := len(stats.ResponseTimes)
	fmt.Printf("Min response time:     %v\n", stats.ResponseTimes[0])
	fmt.Printf("Avg response time:     %v\n", sum/time.Duration(n))
	fmt.Printf("P95 response time:     %v\n", stats.ResponseTimes[n*95/100])
	fmt.Printf("Max response time:     %v\n", stats.ResponseTimes[n-1])

	fmt.Println("\nStatus codes:")
	codes := make([]int, 0, len(stats.StatusCounts))
	for code := range stats.StatusCounts {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Printf("  %d: %d\n", code, stats.StatusCounts[code])
	}
}
