package cache

import (
	"github.com/gomodule/redigo/redis"
)

// Thin wrappers over the redis commands the session registry uses. Keys are
// namespaced by the caller (game id prefixes).

func Get(conn redis.Conn, key string) (string, error) {
	return redis.String(conn.Do("GET", key))
}

func Set(conn redis.Conn, key string, value interface{}) error {
	_, err := conn.Do("SET", key, value)
	return err
}

func Del(conn redis.Conn, keys ...string) error {
	_, err := conn.Do("DEL", redis.Args{}.AddFlat(keys)...)
	return err
}

func HSet(conn redis.Conn, key, field string, value interface{}) error {
	_, err := conn.Do("HSET", key, field, value)
	return err
}

func HGet(conn redis.Conn, key, field string) (string, error) {
	return redis.String(conn.Do("HGET", key, field))
}

// RPush appends values to the list at key, preserving order.
func RPush(conn redis.Conn, key string, values []string) error {
	_, err := conn.Do("RPUSH", redis.Args{}.Add(key).AddFlat(values)...)
	return err
}

// LRange returns the whole list at key.
func LRange(conn redis.Conn, key string) ([]string, error) {
	return redis.Strings(conn.Do("LRANGE", key, 0, -1))
}

func LIndex(conn redis.Conn, key string, idx int) (string, error) {
	return redis.String(conn.Do("LINDEX", key, idx))
}

// LRem removes every occurrence of value from the list at key.
func LRem(conn redis.Conn, key, value string) error {
	_, err := conn.Do("LREM", key, 0, value)
	return err
}

func LLen(conn redis.Conn, key string) (int, error) {
	return redis.Int(conn.Do("LLEN", key))
}
