package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectk-backend/internal/entity"
)

// MoveJournal records accepted moves per game.
type MoveJournal interface {
	Append(ctx context.Context, move *entity.Move) error
	List(ctx context.Context, gameID int64) ([]*entity.Move, error)
}

type redisJournal struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

// NewMoveJournal stores moves in one sorted set per game, scored by ply.
// namespace keeps the journals of different processes apart, since game ids restart with the process.
func NewMoveJournal(client *redis.Client, namespace string, ttl time.Duration) MoveJournal {
	return &redisJournal{
		client:    client,
		namespace: namespace,
		ttl:       ttl,
	}
}

func (that *redisJournal) Append(ctx context.Context, move *entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	key := that.key(move.GameID)

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(move.Ply), Member: moveJSON})
		if that.ttl > 0 {
			pipe.Expire(ctx, key, that.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append move: %w", err)
	}

	return nil
}

func (that *redisJournal) List(ctx context.Context, gameID int64) ([]*entity.Move, error) {
	response, err := that.client.ZRange(ctx, that.key(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	moves := make([]*entity.Move, 0, len(response))
	for _, raw := range response {
		var move entity.Move
		if err = json.Unmarshal([]byte(raw), &move); err != nil {
			return nil, fmt.Errorf("failed to unmarshal move: %w", err)
		}
		moves = append(moves, &move)
	}

	return moves, nil
}

func (that *redisJournal) key(gameID int64) string {
	return "journal:" + that.namespace + ":game:" + strconv.FormatInt(gameID, 10)
}

type nopJournal struct{}

// NewNopJournal is used when redis is disabled; it keeps no history.
func NewNopJournal() MoveJournal {
	return nopJournal{}
}

func (nopJournal) Append(context.Context, *entity.Move) error {
	return nil
}

func (nopJournal) List(context.Context, int64) ([]*entity.Move, error) {
	return []*entity.Move{}, nil
}
