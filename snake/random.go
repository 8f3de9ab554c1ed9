package snake

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// RandomSource returns a uniform value in [0, bound). bound is always > 0.
type RandomSource interface {
	Uint(bound int) int
}

// Clock feeds the initial countdown jitter.
type Clock interface {
	Now() int
}

type systemClock struct{}

func (systemClock) Now() int {
	return int(time.Now().UnixNano() & 0x7fffffff)
}

// SystemClock 使用系统时间
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock always reports the same instant, so seeded games replay exactly.
type FixedClock int

func (c FixedClock) Now() int { return int(c) }

type pcgSource struct {
	r *rand.Rand
}

// NewPCGSource returns the default source, a PCG generator seeded with seed.
func NewPCGSource(seed uint64) RandomSource {
	return &pcgSource{r: rand.New(rand.NewSource(seed))}
}

func (p *pcgSource) Uint(bound int) int {
	return p.r.Intn(bound)
}

// FairSource derives its values from HMAC-SHA256(serverSeed, "client:nonce:round"),
// so a game created with the same seeds replays the same spawns.
type FairSource struct {
	serverSeed string
	clientSeed string
	nonce      uint64
	round      uint64
	pos        int
	buffer     [32]byte
}

func NewFairSource(serverSeed, clientSeed string, nonce uint64) *FairSource {
	fs := &FairSource{
		serverSeed: serverSeed,
		clientSeed: clientSeed,
		nonce:      nonce,
	}
	fs.generateRound()
	return fs
}

func (fs *FairSource) generateRound() {
	h := hmac.New(sha256.New, []byte(fs.serverSeed))
	h.Write([]byte(fmt.Sprintf("%s:%d:%d", fs.clientSeed, fs.nonce, fs.round)))
	copy(fs.buffer[:], h.Sum(nil))
	fs.pos = 0
}

func (fs *FairSource) next() byte {
	if fs.pos >= len(fs.buffer) {
		fs.round++
		fs.generateRound()
	}
	b := fs.buffer[fs.pos]
	fs.pos++
	return b
}

// Float 用 4 个字节生成 [0, 1) 的浮点数
func (fs *FairSource) Float() float64 {
	result := 0.0
	divider := 1.0
	for i := 0; i < 4; i++ {
		divider *= 256
		result += float64(fs.next()) / divider
	}
	return result
}

func (fs *FairSource) Uint(bound int) int {
	v := int(fs.Float() * float64(bound))
	if v >= bound {
		v = bound - 1
	}
	return v
}
