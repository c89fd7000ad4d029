package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	USER_CREATED_QUEUE      = "user_created"
	USER_INFO_UPDATED_QUEUE = "user_info_updated"
)

type MQConn struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func New(connString string) (*MQConn, error) {
	conn, err := amqp.Dial(connString)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &MQConn{
		conn:    conn,
		channel: channel,
	}, nil
}

func (mq *MQConn) Consume(queue string) (<-chan amqp.Delivery, error) {
	if _, err := mq.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}

	return mq.channel.Consume(queue, "", false, false, false, false, nil)
}

func (mq *MQConn) Close() error {
	if err := mq.channel.Close(); err != nil {
		return err
	}
	return mq.conn.Close()
}
