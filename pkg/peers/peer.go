package peers

import (
	"context"
	"time"

	"github.com/meower-media/notify/pkg/db"
	"github.com/meower-media/notify/pkg/meowid"
	"github.com/meower-media/notify/pkg/notify"
	"github.com/meower-media/notify/pkg/protocol"
	"github.com/meower-media/notify/pkg/structs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	PeerTypeUser    int8 = 0
	PeerTypeGroup   int8 = 1
	PeerTypeChannel int8 = 2
)

// Peer is one conversation entity (user, group or channel) as seen by one
// user. It owns that user's notification settings for the conversation.
type Peer struct {
	Id        PeerIdCompound `bson:"_id" msgpack:"id"`
	Type      int8           `bson:"type" msgpack:"type"`
	CreatedAt int64          `bson:"created_at" msgpack:"created_at"`
	Notify    notify.State   `bson:"notify,omitempty" msgpack:"notify,omitempty"`
}

type PeerIdCompound struct {
	UserId meowid.MeowID `bson:"user" msgpack:"user"`
	ChatId meowid.MeowID `bson:"chat" msgpack:"chat"`
}

func GetPeer(userId meowid.MeowID, chatId meowid.MeowID) (Peer, error) {
	var peer Peer
	err := db.Peers.FindOne(
		context.TODO(),
		bson.M{"_id.user": userId, "_id.chat": chatId},
	).Decode(&peer)
	if err == mongo.ErrNoDocuments {
		return peer, ErrPeerNotFound
	}
	return peer, err
}

// EnsurePeer fetches a peer, materializing it with unknown settings if this
// is the first time the conversation is seen for the user.
func EnsurePeer(userId meowid.MeowID, chatId meowid.MeowID, peerType int8) (Peer, error) {
	peer, err := GetPeer(userId, chatId)
	if err == nil {
		return peer, nil
	}
	if err != ErrPeerNotFound {
		return peer, err
	}

	peer = Peer{
		Id: PeerIdCompound{
			UserId: userId,
			ChatId: chatId,
		},
		Type:      peerType,
		CreatedAt: time.Now().UnixMilli(),
	}
	if _, err := db.Peers.InsertOne(context.TODO(), &peer); err != nil {
		return peer, err
	}
	return peer, nil
}

// Settings rebuilds the live container from the stored snapshot.
func (p *Peer) Settings() notify.Settings {
	return notify.FromState(p.Notify, nil)
}

// ApplyPush merges a server-authoritative snapshot into the peer's settings.
// When anything changed the new state is persisted and an update event is
// emitted for the owner's sessions.
func (p *Peer) ApplyPush(data *protocol.PeerNotifySettings) (bool, error) {
	settings := p.Settings()
	if !settings.Change(data) {
		return false, nil
	}
	return true, p.saveNotify(settings)
}

// SetMute applies a local mute override. A nil duration leaves the mute
// state alone; zero or negative explicitly unmutes.
func (p *Peer) SetMute(muteForSeconds *int64) (bool, error) {
	return p.setOverride(muteForSeconds, nil)
}

// SetSilentPosts applies a local silent-posts override.
func (p *Peer) SetSilentPosts(silentPosts *bool) (bool, error) {
	return p.setOverride(nil, silentPosts)
}

func (p *Peer) setOverride(muteForSeconds *int64, silentPosts *bool) (bool, error) {
	settings := p.Settings()
	if !settings.ChangeOverride(muteForSeconds, silentPosts) {
		return false, nil
	}
	return true, p.saveNotify(settings)
}

func (p *Peer) saveNotify(settings notify.Settings) error {
	p.Notify = settings.State()
	if _, err := db.Peers.UpdateByID(
		context.TODO(),
		p.Id,
		bson.M{"$set": bson.M{"notify": p.Notify}},
	); err != nil {
		return err
	}

	// Emit event
	return EmitUpdateNotifySettingsEvent(p.Id.UserId, p.Id.ChatId, p.V0NotifySettings())
}

func (p *Peer) MuteUntil() *int64 {
	settings := p.Settings()
	return settings.MuteUntil()
}

func (p *Peer) SilentPosts() *bool {
	settings := p.Settings()
	return settings.SilentPosts()
}

func (p *Peer) SettingsUnknown() bool {
	settings := p.Settings()
	return settings.SettingsUnknown()
}

// SerializeInput builds the partial-update request a sync worker would send
// upstream for this peer.
func (p *Peer) SerializeInput() protocol.InputPeerNotifySettings {
	settings := p.Settings()
	return settings.Serialize()
}

func (p *Peer) V0NotifySettings() structs.V0PeerNotifySettings {
	settings := p.Settings()
	st := settings.State()
	v0 := structs.V0PeerNotifySettings{
		Unknown:      settings.SettingsUnknown(),
		MuteUntil:    st.MuteUntil,
		ShowPreviews: st.ShowPreviews,
		Silent:       st.Silent,
	}
	if st.Sound != nil {
		v0.Sound = &structs.V0NotifySound{
			None:       st.Sound.None,
			Title:      st.Sound.Title,
			Data:       st.Sound.Data,
			RingtoneId: st.Sound.RingtoneId,
		}
	}
	return v0
}
