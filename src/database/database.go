package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// ConnectMongoDB เชื่อมต่อ MongoDB และ ping primary ครั้งเดียวตอนเริ่มโปรแกรม
//
// client ที่ได้ใช้ร่วมกันทุก request และต้องเรียก Disconnect ตอนปิดโปรแกรม
func ConnectMongoDB(ctx context.Context, uri string, log *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info("MongoDB connected successfully")
	return client, nil
}

// Disconnect ปิดการเชื่อมต่อ
func Disconnect(ctx context.Context, client *mongo.Client, log *zap.Logger) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Warn("MongoDB disconnect failed", zap.Error(err))
	}
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(client *mongo.Client, dbName, collectionName string) *mongo.Collection {
	return client.Database(dbName).Collection(collectionName)
}
