package event_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	dispatcher := event.NewDispatcher()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()
	dispatcher.Subscribe(listenerOne)
	dispatcher.Subscribe(listenerTwo)

	events := []event.Event{
		event.CardPlayed{PlayerName: "Someone", Card: card.NewWildCard()},
		event.ColorChanged{PlayerName: "Someone", Color: color.Green},
		event.TurnChanged{PlayerName: "Somebody"},
	}
	dispatcher.Publish(events...)
	dispatcher.Flush()

	require.Equal(t, events, listenerOne.Received())
	require.Equal(t, events, listenerTwo.Received())
}

func TestSubscribeTwice(t *testing.T) {
	dispatcher := event.NewDispatcher()
	listener := event.NewDummyListener()
	dispatcher.Subscribe(listener)
	dispatcher.Subscribe(listener)

	dispatcher.Publish(event.PlayerRegistered{PlayerName: "A"})
	dispatcher.Close()

	require.Len(t, listener.Received(), 1)
}

func TestUnsubscribe(t *testing.T) {
	dispatcher := event.NewDispatcher()
	listener := event.NewDummyListener()
	dispatcher.Subscribe(listener)
	dispatcher.Publish(event.PlayerRegistered{PlayerName: "A"})
	dispatcher.Unsubscribe(listener)
	dispatcher.Publish(event.PlayerLeft{PlayerName: "A"})
	dispatcher.Flush()

	require.Equal(t, []event.Kind{event.KindPlayerRegistered}, listener.Kinds())
}

func TestFailingListenerKeepsReceiving(t *testing.T) {
	dispatcher := event.NewDispatcher()
	listener := event.NewDummyListener()
	listener.FailWith(errors.New("connection reset"))
	dispatcher.Subscribe(listener)

	dispatcher.Publish(event.UnoCalled{PlayerName: "A"}, event.GameOver{Winner: "A"})
	dispatcher.Close()

	require.Equal(t, []event.Kind{event.KindUnoCalled, event.KindGameOver}, listener.Kinds())
}

type blockingListener struct {
	release chan struct{}
	once    sync.Once
}

func (l *blockingListener) OnEvent(event.Event) error {
	l.once.Do(func() { <-l.release })
	return nil
}

func TestSlowListenerDoesNotBlockOthers(t *testing.T) {
	dispatcher := event.NewDispatcher()
	slow := &blockingListener{release: make(chan struct{})}
	fast := event.NewDummyListener()
	dispatcher.Subscribe(slow)
	dispatcher.Subscribe(fast)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			dispatcher.Publish(event.TurnChanged{PlayerName: "A"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow listener")
	}
	require.Eventually(t, func() bool { return len(fast.Received()) == 100 }, time.Second, 5*time.Millisecond)

	close(slow.release)
	dispatcher.Close()
}

func TestPublishAfterClose(t *testing.T) {
	dispatcher := event.NewDispatcher()
	listener := event.NewDummyListener()
	dispatcher.Subscribe(listener)
	dispatcher.Close()
	dispatcher.Publish(event.PlayerRegistered{PlayerName: "A"})
	dispatcher.Subscribe(event.NewDummyListener())
	require.Empty(t, listener.Received())
}
