package domain

const (
	// Placeholders stored when on-chain metadata cannot be read
	UNKNOWN_TOKEN_NAME   = "Unknown"
	UNKNOWN_TOKEN_SYMBOL = "UNK"

	// Default Starknet Sepolia deployment
	DEFAULT_STARKNET_RPC_URL       = "https://starknet-sepolia-rpc.publicnode.com"
	DEFAULT_TOKEN_FACTORY_ADDRESS  = "0x07ee147bfd2037bcbfe96196689a3ba52e47271a7c5517880ed0f6c88d218c98"
	DEFAULT_LAUNCHPAD_ADDRESS      = "0x04ea108d263eac17f70af11fef789816d39b2fdf96d051da10c1d27c0f50e67b"
	DEFAULT_PAYMENT_TOKEN_ADDRESS  = "0x03f07d3175ee42202dd88d409b15557625891be4d051ed797d663d63b55f2778"
	DEFAULT_LAUNCHPAD_BLOCK_WINDOW = 1000
	DEFAULT_EVENT_CHUNK_SIZE       = 100

	// Factory scan bounds
	DEFAULT_SCAN_QUEUE_SIZE = 100
	MAX_FACTORY_TOKEN_COUNT = 1_000_000
)
