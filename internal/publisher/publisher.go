package publisher

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/watcher/configs"
	"github.com/thirdweb-dev/watcher/internal/common"
	"github.com/thirdweb-dev/watcher/internal/metrics"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"
)

type Publisher struct {
	client *kgo.Client
	mu     sync.RWMutex
}

var (
	instance *Publisher
	once     sync.Once
)

type PublishableMessage struct {
	Data   common.Log `json:"data"`
	Status string     `json:"status"`
}

// GetInstance returns the singleton Publisher instance
func GetInstance() *Publisher {
	once.Do(func() {
		instance = &Publisher{}
		if err := instance.initialize(); err != nil {
			log.Error().Err(err).Msg("Failed to initialize publisher")
		}
	})
	return instance
}

func (p *Publisher) initialize() error {
	if !config.Cfg.Publisher.Enabled {
		log.Debug().Msg("Publisher is disabled, skipping initialization")
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if config.Cfg.Publisher.Brokers == "" {
		log.Info().Msg("No Kafka brokers configured, skipping publisher initialization")
		return nil
	}

	brokers := strings.Split(config.Cfg.Publisher.Brokers, ",")
	opts := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.ClientID(fmt.Sprintf("contract-watcher-%s", config.Cfg.RPC.ChainID)),
		kgo.MetadataMaxAge(60 * time.Second),
		kgo.DialTimeout(10 * time.Second),
	}

	if config.Cfg.Publisher.Username != "" && config.Cfg.Publisher.Password != "" {
		opts = append(opts, kgo.SASL(plain.Auth{
			User: config.Cfg.Publisher.Username,
			Pass: config.Cfg.Publisher.Password,
		}.AsMechanism()))
		tlsDialer := &tls.Dialer{NetDialer: &net.Dialer{Timeout: 10 * time.Second}}
		opts = append(opts, kgo.Dialer(tlsDialer.DialContext))
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return fmt.Errorf("failed to create Kafka client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Kafka: %v", err)
	}
	p.client = client
	return nil
}

// Enabled reports whether logs handed to the publisher reach a broker.
func (p *Publisher) Enabled() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.client != nil
}

// PublishLog routes a single delivered log to the configured topic. It has
// the shape of a stream log handler.
func (p *Publisher) PublishLog(entry common.Log) error {
	return p.PublishLogs(context.Background(), []common.Log{entry})
}

func (p *Publisher) PublishLogs(ctx context.Context, entries []common.Log) error {
	if len(entries) == 0 || !p.Enabled() {
		return nil
	}

	publishStart := time.Now()
	messages := make([]*kgo.Record, 0, len(entries))
	for _, entry := range entries {
		msg, err := createEventMessage(entry, topicName())
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}

	if err := p.publishMessages(ctx, messages); err != nil {
		return fmt.Errorf("failed to publish event messages: %v", err)
	}

	log.Debug().Str("metric", "publish_duration").Msgf("Publisher.PublishLogs duration: %f", time.Since(publishStart).Seconds())
	metrics.PublishDuration.Observe(time.Since(publishStart).Seconds())
	metrics.PublishedLogs.Add(float64(len(entries)))
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		p.client.Close()
		log.Debug().Msg("Publisher client closed")
	}
	return nil
}

func (p *Publisher) publishMessages(ctx context.Context, messages []*kgo.Record) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.client == nil {
		return nil
	}

	var wg sync.WaitGroup
	var produceErr error
	var errMu sync.Mutex
	wg.Add(len(messages))
	for _, msg := range messages {
		p.client.Produce(ctx, msg, func(_ *kgo.Record, err error) {
			defer wg.Done()
			if err != nil {
				log.Error().Err(err).Msg("Failed to publish message to Kafka")
				errMu.Lock()
				if produceErr == nil {
					produceErr = err
				}
				errMu.Unlock()
			}
		})
	}
	wg.Wait()

	return produceErr
}

func createEventMessage(entry common.Log, topic string) (*kgo.Record, error) {
	status := "new"
	if entry.Removed {
		status = "reverted"
	}
	msg := PublishableMessage{
		Data:   entry,
		Status: status,
	}
	msgJson, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event data: %v", err)
	}
	return &kgo.Record{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("event-%s-%s-%s-%d", status, entry.ChainId.String(), entry.TransactionHash, entry.LogIndex)),
		Value: msgJson,
	}, nil
}

func topicName() string {
	if config.Cfg.Publisher.Topic != "" {
		return config.Cfg.Publisher.Topic
	}
	if config.Cfg.RPC.ChainID != "" {
		return fmt.Sprintf("watcher.events.%s", config.Cfg.RPC.ChainID)
	}
	return "watcher.events"
}
