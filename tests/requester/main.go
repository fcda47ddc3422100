package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

// Нагрузка на публичную часть каталога: карточка товара и поиск.
// Часть запросов уходит на несуществующие коды, чтобы видеть 404 в метриках.

var categories = []string{"", "top", "outer", "pants", "shoes"}

func main() {
	baseURL := "http://localhost:8080"
	if v := os.Getenv("BASE_URL"); v != "" {
		baseURL = v
	}
	itemCode := os.Getenv("ITEM_CODE")

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() {
				if itemCode != "" && rand.Intn(2) == 0 {
					getItem(baseURL, itemCode)
					return
				}
				search(baseURL)
			})
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomCode() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

func getItem(baseURL, code string) {
	if rand.Intn(5) == 0 {
		code = randomCode()
	}
	report(http.Get(baseURL + "/api/items/" + code))
}

func search(baseURL string) {
	body, _ := json.Marshal(map[string]any{
		"category":  categories[rand.Intn(len(categories))],
		"page_no":   rand.Intn(3) + 1,
		"page_size": 20,
	})
	report(http.Post(baseURL+"/api/items/search", "application/json", bytes.NewReader(body)))
}

func report(resp *http.Response, err error) {
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println(resp.Request.Method, resp.Request.URL, "->", resp.Status)
	resp.Body.Close()
}
