package notify

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	claveProgramados = "recordatorios:programados" // ZSET: member = id, score = unix fire time
	claveDatos       = "recordatorios:datos"       // HASH: id → JSON payload
)

// Redis persists reminders in a sorted set keyed by fire time, so they
// survive restarts. Entregar drains the due entries; the poller started by
// Iniciar does this periodically.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Programar(ctx context.Context, n Notificacion) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	miembro := strconv.FormatInt(n.ID, 10)
	pipe := r.rdb.TxPipeline()
	pipe.ZAdd(ctx, claveProgramados, redis.Z{Score: float64(n.Cuando.Unix()), Member: miembro})
	pipe.HSet(ctx, claveDatos, miembro, data)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *Redis) Cancelar(ctx context.Context, id int64) error {
	miembro := strconv.FormatInt(id, 10)
	pipe := r.rdb.TxPipeline()
	pipe.ZRem(ctx, claveProgramados, miembro)
	pipe.HDel(ctx, claveDatos, miembro)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *Redis) CancelarTodas(ctx context.Context) error {
	return r.rdb.Del(ctx, claveProgramados, claveDatos).Err()
}

func (r *Redis) Pendientes(ctx context.Context) ([]Notificacion, error) {
	miembros, err := r.rdb.ZRangeByScore(ctx, claveProgramados, &redis.ZRangeBy{Min: "-inf", Max: "+inf"}).Result()
	if err != nil {
		return nil, err
	}
	result := make([]Notificacion, 0, len(miembros))
	for _, miembro := range miembros {
		data, err := r.rdb.HGet(ctx, claveDatos, miembro).Result()
		if err != nil {
			continue
		}
		var n Notificacion
		if err := json.Unmarshal([]byte(data), &n); err != nil {
			continue
		}
		result = append(result, n)
	}
	return result, nil
}

// Entregar pops and logs every reminder whose fire time has passed.
func (r *Redis) Entregar(ctx context.Context) error {
	ahora := strconv.FormatInt(time.Now().Unix(), 10)
	miembros, err := r.rdb.ZRangeByScore(ctx, claveProgramados, &redis.ZRangeBy{Min: "-inf", Max: ahora}).Result()
	if err != nil {
		return err
	}
	for _, miembro := range miembros {
		data, err := r.rdb.HGet(ctx, claveDatos, miembro).Result()
		if err == nil {
			var n Notificacion
			if json.Unmarshal([]byte(data), &n) == nil {
				log.Info().Int64("id", n.ID).Str("titulo", n.Titulo).Str("cuerpo", n.Cuerpo).Msg("recordatorio")
			}
		}
		pipe := r.rdb.TxPipeline()
		pipe.ZRem(ctx, claveProgramados, miembro)
		pipe.HDel(ctx, claveDatos, miembro)
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Iniciar launches the delivery poller. It stops when ctx is cancelled.
func (r *Redis) Iniciar(ctx context.Context, cada time.Duration) {
	go func() {
		ticker := time.NewTicker(cada)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.Entregar(ctx); err != nil && ctx.Err() == nil {
					log.Warn().Err(err).Msg("error al entregar recordatorios")
				}
			}
		}
	}()
}
