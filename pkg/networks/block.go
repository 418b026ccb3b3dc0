package networks

import (
	"context"
	"log"
	"net"

	"github.com/getsentry/sentry-go"
	"github.com/meower-media/notify/pkg/db"
	"github.com/meower-media/notify/pkg/meowid"
	"github.com/meower-media/notify/pkg/rdb"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/yl2chen/cidranger"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	OpCreateBlock byte = 0x1
	OpDeleteBlock byte = 0x2
)

const firewallChannel = "firewall"

var ranger = cidranger.NewPCTrieRanger()

type BlockEntry struct {
	Id        meowid.MeowID `bson:"_id" msgpack:"id"`
	Address   string        `bson:"address" msgpack:"address"`
	ExpiresAt int64         `bson:"expires_at" msgpack:"expires_at"`
}

func (b BlockEntry) Network() net.IPNet {
	_, network, _ := net.ParseCIDR(b.Address)
	return *network
}

// LoadBlocks fills the ranger from the database at startup.
func LoadBlocks() error {
	cur, err := db.Netblock.Find(context.TODO(), bson.M{})
	if err != nil {
		return err
	}
	var entries []BlockEntry
	if err := cur.All(context.TODO(), &entries); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := ranger.Insert(entry); err != nil {
			return err
		}
	}
	return nil
}

func CreateBlock(address string, expiresAt int64) (BlockEntry, error) {
	entry := BlockEntry{
		Id:        meowid.GenId(),
		Address:   address,
		ExpiresAt: expiresAt,
	}

	if err := ranger.Insert(entry); err != nil {
		return entry, err
	}

	// Store in database
	if _, err := db.Netblock.InsertOne(context.TODO(), entry); err != nil {
		return entry, err
	}

	// Tell other instances about the block
	marshaledEntry, err := msgpack.Marshal(entry)
	if err != nil {
		return entry, err
	}
	marshaledEntry = append([]byte{OpCreateBlock}, marshaledEntry...)
	return entry, rdb.Publish(firewallChannel, marshaledEntry)
}

func DeleteBlock(entry BlockEntry) error {
	if _, err := ranger.Remove(entry.Network()); err != nil {
		return err
	}
	if _, err := db.Netblock.DeleteOne(context.TODO(), bson.M{"_id": entry.Id}); err != nil {
		return err
	}

	marshaledEntry, err := msgpack.Marshal(entry)
	if err != nil {
		return err
	}
	marshaledEntry = append([]byte{OpDeleteBlock}, marshaledEntry...)
	return rdb.Publish(firewallChannel, marshaledEntry)
}

func IsBlocked(address string) (bool, error) {
	ip := net.ParseIP(address)
	if ip == nil {
		return false, nil
	}
	return ranger.Contains(ip)
}

// ListenBlocks applies firewall fanout messages from other instances until
// the context ends.
func ListenBlocks(ctx context.Context) {
	pubsub := rdb.Subscribe(ctx, firewallChannel)
	defer pubsub.Close()
	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)
		if len(payload) < 1 {
			continue
		}
		var entry BlockEntry
		if err := msgpack.Unmarshal(payload[1:], &entry); err != nil {
			sentry.CaptureException(err)
			continue
		}
		switch payload[0] {
		case OpCreateBlock:
			if err := ranger.Insert(entry); err != nil {
				sentry.CaptureException(err)
			}
		case OpDeleteBlock:
			if _, err := ranger.Remove(entry.Network()); err != nil {
				sentry.CaptureException(err)
			}
		default:
			log.Println("unknown firewall op", payload[0])
		}
	}
}
