package models

type FeedbackModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserID    uint   `gorm:"not null;index"`
	TicketID  *uint  `gorm:"index"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}
