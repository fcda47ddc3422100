package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

// Restock совпадает с сообщением, которое читает консьюмер сервиса
type Restock struct {
	ItemCode string `json:"item_code"`
	Quantity int    `json:"quantity"`
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka brokers через запятую")
	topic := flag.String("topic", "stock-restock", "топик поставок")
	codes := flag.String("items", "", "коды товаров через запятую")
	interval := flag.Duration("interval", 2*time.Second, "период отправки")
	broken := flag.Int("broken", 10, "процент заведомо невалидных сообщений для проверки DLQ")
	flag.Parse()

	items := strings.Split(*codes, ",")
	if *codes == "" {
		log.Fatal("items are required")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			msg := Restock{
				ItemCode: items[rand.Intn(len(items))],
				Quantity: rand.Intn(20) + 1,
			}
			if rand.Intn(100) < *broken {
				msg.Quantity = 0
			}
			data, _ := json.Marshal(msg)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(msg.ItemCode), Value: data}); err != nil {
				log.Println("failed to write restock:", err)
				continue
			}
			log.Println("restock sent", msg.ItemCode, msg.Quantity)
		case <-ctx.Done():
			return
		}
	}
}
