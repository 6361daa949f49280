package types

const (
	EventTypeControlsInitialised   = "editions.controls_initialised"
	EventTypePhaseAdded            = "editions.phase_added"
	EventTypeMintAuthorized        = "editions.mint_authorized"
	EventTypePlatformFeeUpdated    = "editions.platform_fee_updated"
	EventTypeSecondaryAdminUpdated = "editions.secondary_admin_updated"

	AttributeKeyControlsID  = "controls_id"
	AttributeKeyDeployment  = "deployment"
	AttributeKeyCreator     = "creator"
	AttributeKeyPhaseIndex  = "phase_index"
	AttributeKeyMinter      = "minter"
	AttributeKeyPrice       = "price"
	AttributeKeyAllowList   = "allow_list"
	AttributeKeyTotalFee    = "total_fee"
	AttributeKeyRemainder   = "remainder"
	AttributeKeyFeeValue    = "platform_fee_value"
	AttributeKeyFeeFlat     = "is_fee_flat"
	AttributeKeyAdmin       = "admin"
	AttributeKeyWalletMints = "wallet_mints"
	AttributeKeyPhaseMints  = "phase_mints"
)
