package domain

import "time"

// Device is a registered mobile device. The push token, when present, is
// the target for hearing reminder notifications.
type Device struct {
	DeviceID  string    `json:"id" dynamodbav:"device_id"`
	UUID      string    `json:"uuid" dynamodbav:"device_uuid"`
	UserID    string    `json:"user_id" dynamodbav:"user_id"`
	PushToken *string   `json:"push_token" dynamodbav:"push_token"`
	Enable    bool      `json:"enable" dynamodbav:"enable"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

type UpdateDeviceRequest struct {
	PushToken *string `json:"push_token"`
}
