package chain

// Minimal ABIs for the read-only calls the ledger makes.

const newsRegistryABI = `[
  {"type":"function","name":"getAIScore","stateMutability":"view",
   "inputs":[{"name":"newsId","type":"uint256"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getTotalNews","stateMutability":"view",
   "inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getNews","stateMutability":"view",
   "inputs":[{"name":"newsId","type":"uint256"}],
   "outputs":[{"name":"","type":"tuple","internalType":"struct NewsRegistry.News","components":[
     {"name":"id","type":"uint256"},
     {"name":"contentHash","type":"bytes32"},
     {"name":"aiScore","type":"uint256"},
     {"name":"submitter","type":"address"},
     {"name":"submitterZkHash","type":"bytes32"},
     {"name":"timestamp","type":"uint256"},
     {"name":"title","type":"string"},
     {"name":"sourceUrl","type":"string"},
     {"name":"exists","type":"bool"}
   ]}]}
]`

const voteManagerABI = `[
  {"type":"function","name":"getVoteCounts","stateMutability":"view",
   "inputs":[{"name":"newsId","type":"uint256"}],
   "outputs":[
     {"name":"realVotes","type":"uint256"},
     {"name":"fakeVotes","type":"uint256"},
     {"name":"uncertainVotes","type":"uint256"},
     {"name":"totalVotes","type":"uint256"}
   ]}
]`
