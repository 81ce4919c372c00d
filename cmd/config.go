package cmd

import "fmt"

// Config carries the environment-driven settings of the dispatch service.
type Config struct {
	HTTPPort                  string
	DBHost                    string
	DBPort                    string
	DBUser                    string
	DBPassword                string
	DBName                    string
	DBSslMode                 string
	KafkaHost                 string
	KafkaConsumerGroup        string
	KafkaBasketConfirmedTopic string
	KafkaOrderChangedTopic    string
}

// DBConnectionString renders the postgres DSN.
func (c Config) DBConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
