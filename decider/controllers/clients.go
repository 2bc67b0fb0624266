package controllers

import (
	"sync"

	"github.com/Wa1tonGan/food-decider/decider/accounts"
	"github.com/Wa1tonGan/food-decider/decider/chat"
	"github.com/Wa1tonGan/food-decider/decider/questionnaire"
	"github.com/Wa1tonGan/food-decider/decider/recommend"
	"github.com/Wa1tonGan/food-decider/decider/session"
	"github.com/Wa1tonGan/food-decider/decider/utils/logging"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Client is everything one client instance owns: its persisted store and the
// in-memory chat and questionnaire state.
type Client struct {
	ID       string
	Store    *session.Store
	Accounts *accounts.Accounts
	Chat     *chat.Session

	mu   sync.Mutex
	flow *questionnaire.Flow
}

// Flow returns the running questionnaire, starting a fresh one if none runs.
func (c *Client) Flow() *questionnaire.Flow {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.flow == nil || c.flow.Done() {
		c.flow = questionnaire.NewFlow(c.Store)
	}
	return c.flow
}

// EndFlow discards the questionnaire, finished or not.
func (c *Client) EndFlow() {
	c.mu.Lock()
	c.flow = nil
	c.mu.Unlock()
}

// Clients keeps the live clients. Chat transcripts only live here, so an
// evicted client starts over with an empty transcript; its store is untouched.
// A client evicted while its chat is loading is pinned until it is asked for
// again, so no second session can run a send beside the first.
type Clients struct {
	backend session.Backend
	svc     recommend.Service

	mu     sync.Mutex
	cache  *lru.Cache[string, *Client]
	pinned map[string]*Client
}

func NewClients(backend session.Backend, svc recommend.Service, size int) (*Clients, error) {
	cs := &Clients{backend: backend, svc: svc, pinned: map[string]*Client{}}
	// runs under cs.mu, from inside cache.Add
	cache, err := lru.NewWithEvict[string, *Client](size, func(id string, c *Client) {
		if c.Chat.Loading() {
			cs.pinned[id] = c
			logging.AppLogger.Info("client pinned while loading", zap.String("client_id", id))
			return
		}
		logging.AppLogger.Info("client evicted", zap.String("client_id", id))
	})
	if err != nil {
		return nil, err
	}
	cs.cache = cache
	return cs, nil
}

func (cs *Clients) Get(clientID string) *Client {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if c, ok := cs.cache.Get(clientID); ok {
		return c
	}
	if c, ok := cs.pinned[clientID]; ok {
		delete(cs.pinned, clientID)
		cs.cache.Add(clientID, c)
		return c
	}
	cs.releasePinned()
	store := session.NewStore(cs.backend, clientID)
	c := &Client{
		ID:       clientID,
		Store:    store,
		Accounts: accounts.New(store),
		Chat:     chat.NewSession(cs.svc, store),
	}
	cs.cache.Add(clientID, c)
	return c
}

// releasePinned drops pinned clients whose send has finished.
func (cs *Clients) releasePinned() {
	for id, c := range cs.pinned {
		if !c.Chat.Loading() {
			delete(cs.pinned, id)
		}
	}
}

// Reset drops the in-memory chat and questionnaire of a client, keeping the
// client itself so a send still in flight keeps guarding its session.
func (cs *Clients) Reset(clientID string) {
	c := cs.Get(clientID)
	c.Chat.NewChat()
	c.EndFlow()
}

func (cs *Clients) Service() recommend.Service {
	return cs.svc
}

// Len counts cached clients, not pinned ones.
func (cs *Clients) Len() int {
	return cs.cache.Len()
}
