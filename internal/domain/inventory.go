package domain

// InventoryEntry is a player-owned, stackable record of a purchased item.
// Fields other than Quantity are a snapshot taken at purchase time; later
// catalog price drift never changes the value of an already-owned entry.
// UnitValue is fixed at the source item's BasePrice and is the refund per
// unit on sale.
type InventoryEntry struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Subtype     string   `json:"subtype,omitempty"`
	Rarity      Rarity   `json:"rarity,omitempty"`
	UnitValue   int      `json:"unit_value"`
	Quantity    int      `json:"quantity"`
}

// Inventory is the player's collection of owned entries.
type Inventory struct {
	Entries []InventoryEntry `json:"entries"`
}

// FindEntry returns the index of the entry with the given ID, or -1.
func (inv *Inventory) FindEntry(entryID string) int {
	for i := range inv.Entries {
		if inv.Entries[i].ID == entryID {
			return i
		}
	}
	return -1
}

// FindStack returns the index of the entry matching the (name, category)
// stacking identity, or -1. Repeat purchases merge into this entry.
func (inv *Inventory) FindStack(name string, category Category) int {
	for i := range inv.Entries {
		if inv.Entries[i].Name == name && inv.Entries[i].Category == category {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the inventory. Mutating the copy never
// touches the original, which lets callers stage changes before committing.
func (inv *Inventory) Clone() Inventory {
	out := Inventory{}
	if len(inv.Entries) > 0 {
		out.Entries = make([]InventoryEntry, len(inv.Entries))
		copy(out.Entries, inv.Entries)
	}
	return out
}

// EconomyState bundles the two persisted pieces of player economy state:
// the wallet balance and the owned-item inventory. It is passed explicitly
// into whatever owns a session rather than read as ambient globals.
type EconomyState struct {
	Balance   int       `json:"balance"`
	Inventory Inventory `json:"inventory"`
}
