package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentBlock(t *testing.T) {
	currentBlock, e := CurrentBlock(context.Background(), 15, 1603366002)
	if e != nil {
		t.Error(e)
	}

	t.Log("currentBlock:", currentBlock)
}

func TestGetBlockByTime(t *testing.T) {
	genesis := int64(1603366002)
	at := time.Unix(genesis+150, 0)

	block, err := GetBlockByTime(context.Background(), 15, genesis, at)
	assert.Nil(t, err)
	assert.Equal(t, int64(10), block)

	_, err = GetBlockByTime(context.Background(), 0, genesis, at)
	assert.NotNil(t, err)

	_, err = GetBlockByTime(context.Background(), 15, genesis, time.Unix(genesis, 0))
	assert.NotNil(t, err)
}
