package models

// RoomTimeBlock é a linha de junção entre salas e blocos de tempo.
// Substituída em bloco (delete + insert) quando a sala é atualizada.
type RoomTimeBlock struct {
	RoomID      uint `gorm:"primaryKey" json:"room_id"`
	TimeBlockID uint `gorm:"primaryKey" json:"time_block_id"`
}
